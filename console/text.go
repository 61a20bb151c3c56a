package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kbukum/gostreams/demo"
	"github.com/kbukum/gostreams/pipeline"
	"github.com/kbukum/gostreams/runner"
)

const nameWidth = 26

type textRenderer struct {
	w        io.Writer
	theme    Theme
	pageSize int
}

func newTextRenderer(w io.Writer, opts Options) *textRenderer {
	theme := DefaultTheme(w)
	if opts.NoColor {
		theme = PlainTheme()
	}
	return &textRenderer{w: w, theme: theme, pageSize: opts.PageSize}
}

func (t *textRenderer) Cases(cases []demo.Case) error {
	lecture := 0
	var b strings.Builder
	for _, c := range cases {
		if c.Lecture != lecture {
			if lecture != 0 {
				b.WriteByte('\n')
			}
			lecture = c.Lecture
			b.WriteString(t.theme.Title.Render(fmt.Sprintf("Lecture %d", lecture)))
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %s %s\n", t.theme.Name.Render(c.Name), t.theme.Subtitle.Render(c.Description))
	}
	return t.write(b.String())
}

func (t *textRenderer) Case(c demo.Case) error {
	var b strings.Builder
	b.WriteString(t.theme.Title.Render(c.Name))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "  lecture:     %d\n", c.Lecture)
	fmt.Fprintf(&b, "  description: %s\n", c.Description)
	return t.write(b.String())
}

func (t *textRenderer) Outcome(ctx context.Context, o runner.Outcome) error {
	var b strings.Builder
	b.WriteString(t.theme.Title.Render(fmt.Sprintf("[%d] %s", o.Case.Lecture, o.Case.Name)))
	b.WriteString(" ")
	b.WriteString(t.theme.Subtitle.Render(o.Case.Description))
	b.WriteByte('\n')

	if o.Status != runner.StatusOK {
		fmt.Fprintf(&b, "  %s %s\n\n", t.theme.Failure.Render(o.Status+":"), o.Error)
		return t.write(b.String())
	}

	for _, s := range o.Result.Sections {
		if err := t.section(ctx, &b, s); err != nil {
			return err
		}
	}
	b.WriteByte('\n')
	return t.write(b.String())
}

// section prints the values of s one per line. With a page size set, long
// sections are split into numbered pages.
func (t *textRenderer) section(ctx context.Context, b *strings.Builder, s demo.Section) error {
	b.WriteString("  ")
	b.WriteString(t.theme.Section.Render(s.Title))
	b.WriteByte('\n')
	if len(s.Values) == 0 {
		b.WriteString("    ")
		b.WriteString(t.theme.Muted.Render("(empty)"))
		b.WriteByte('\n')
		return nil
	}

	size := t.pageSize
	if size <= 0 {
		size = len(s.Values)
	}
	pages := (len(s.Values) + size - 1) / size
	page := 0
	return pipeline.ForEach(ctx, pipeline.Chunk(pipeline.FromSlice(s.Values), size), func(_ context.Context, chunk []any) error {
		page++
		if pages > 1 {
			fmt.Fprintf(b, "    %s\n", t.theme.Muted.Render(fmt.Sprintf("page %d/%d", page, pages)))
		}
		for _, v := range chunk {
			fmt.Fprintf(b, "    %v\n", v)
		}
		return nil
	})
}

func (t *textRenderer) Report(_ context.Context, r *runner.Report) error {
	failed := len(r.Failed())
	status := t.theme.Success.Render("ok")
	if failed > 0 {
		status = t.theme.Failure.Render(fmt.Sprintf("%d failed", failed))
	}
	line := fmt.Sprintf("%d run, %s in %s %s\n",
		len(r.Outcomes), status, r.Duration.Round(time.Microsecond), t.theme.Muted.Render("run "+r.RunID))
	return t.write(line)
}

func (t *textRenderer) write(s string) error {
	_, err := io.WriteString(t.w, s)
	return err
}
