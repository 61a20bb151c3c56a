package fixtures

import (
	"context"
	"embed"
	"io/fs"
	"os"

	json "github.com/goccy/go-json"

	"github.com/kbukum/gostreams/errors"
	"github.com/kbukum/gostreams/logger"
	"github.com/kbukum/gostreams/model"
	"github.com/kbukum/gostreams/observability"
	"github.com/kbukum/gostreams/validation"
)

//go:embed data/people.json data/cars.json
var bundled embed.FS

// Bundled file names.
const (
	PeopleFile = "people.json"
	CarsFile   = "cars.json"
)

// Dataset is the read-only input of every demo.
type Dataset struct {
	People []model.Person `json:"people"`
	Cars   []model.Car    `json:"cars"`
}

// Options selects files that replace the bundled fixtures. Empty paths keep
// the bundled data.
type Options struct {
	PeoplePath string
	CarsPath   string
}

// Load reads, decodes and validates both datasets.
func Load(ctx context.Context, opts Options) (*Dataset, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanFixturesLoad)
	defer span.End()

	people, err := LoadPeople(opts.PeoplePath)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}
	cars, err := LoadCars(opts.CarsPath)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}

	observability.SetSpanAttribute(ctx, "fixtures.people", len(people))
	observability.SetSpanAttribute(ctx, "fixtures.cars", len(cars))
	return &Dataset{People: people, Cars: cars}, nil
}

// LoadPeople loads people from path, or the bundled file when path is empty.
func LoadPeople(path string) ([]model.Person, error) {
	return load(PeopleFile, path, DecodePeople)
}

// LoadCars loads cars from path, or the bundled file when path is empty.
func LoadCars(path string) ([]model.Car, error) {
	return load(CarsFile, path, DecodeCars)
}

func load[T any](name, path string, decode func(string, []byte) ([]T, error)) ([]T, error) {
	source, data, err := read(name, path)
	if err != nil {
		return nil, err
	}
	records, err := decode(source, data)
	if err != nil {
		return nil, err
	}
	logger.Get("fixtures").Debug("fixture loaded", logger.Fields(
		logger.FieldSource, source,
		logger.FieldCount, len(records),
	))
	return records, nil
}

func read(name, path string) (source string, data []byte, err error) {
	if path == "" {
		data, err = fs.ReadFile(bundled, "data/"+name)
		if err != nil {
			return name, nil, errors.Internal(err)
		}
		return name, data, nil
	}

	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		return path, data, nil
	case os.IsNotExist(err):
		return path, nil, errors.NotFound("fixture", path).WithCause(err)
	default:
		return path, nil, errors.InvalidFixture(path, -1, err)
	}
}

// DecodePeople parses data as a JSON array of people. source names the data
// in errors.
func DecodePeople(source string, data []byte) ([]model.Person, error) {
	return decode[model.Person, personRecord](source, data)
}

// DecodeCars parses data as a JSON array of cars. source names the data in
// errors.
func DecodeCars(source string, data []byte) ([]model.Car, error) {
	return decode[model.Car, carRecord](source, data)
}

// decode checks every record twice: the wire form for missing keys, then the
// model for value rules. A null or empty array yields no records.
func decode[T any, R record[T]](source string, data []byte) ([]T, error) {
	var raw []R
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.InvalidFixture(source, -1, err)
	}

	records := make([]T, 0, len(raw))
	for i, r := range raw {
		if err := validation.Validate(r); err != nil {
			return nil, invalidRecord(source, i, err)
		}
		m := r.toModel()
		if err := validation.Validate(m); err != nil {
			return nil, invalidRecord(source, i, err)
		}
		records = append(records, m)
	}
	return records, nil
}

func invalidRecord(source string, index int, err error) *errors.AppError {
	appErr := errors.InvalidFixture(source, index, err)
	if ve, ok := errors.AsAppError(err); ok {
		appErr.WithDetail("fields", ve.Details["fields"])
	}
	return appErr
}
