package pipeline

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/gostreams/model"
)

var (
	testPeople = []model.Person{
		{ID: 1, Name: "Ada", Gender: "female", Age: 36},
		{ID: 2, Name: "Ben", Gender: "male", Age: 17},
		{ID: 3, Name: "Cleo", Gender: "female", Age: 15},
		{ID: 4, Name: "Dan", Gender: "male", Age: 52},
		{ID: 5, Name: "Eve", Gender: "female", Age: 18},
	}
	testCars = []model.Car{
		{ID: 1, Make: "Ford", Model: "Focus", Year: 2012, Color: "Yellow", Price: 12000.50},
		{ID: 2, Make: "Audi", Model: "A4", Year: 2018, Color: "Black", Price: 31000},
		{ID: 3, Make: "Ford", Model: "Fiesta", Year: 2009, Color: "yellow", Price: 8000.25},
		{ID: 4, Make: "Kia", Model: "Rio", Year: 2020, Color: "Red", Price: 15500},
	}
)

func personIDs(people []model.Person) []int {
	ids := make([]int, len(people))
	for i, p := range people {
		ids[i] = p.ID
	}
	return ids
}

func TestFromSlice_Collect(t *testing.T) {
	tests := []struct {
		name string
		in   []model.Person
		want []int
	}{
		{"all records in order", testPeople, []int{1, 2, 3, 4, 5}},
		{"empty", []model.Person{}, []int{}},
		{"nil", nil, []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Collect(context.Background(), FromSlice(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if got == nil {
				t.Fatal("Collect returned nil, want an empty slice")
			}
			if ids := personIDs(got); !intSliceEqual(ids, tc.want) {
				t.Errorf("ids = %v, want %v", ids, tc.want)
			}
		})
	}
}

func TestFromSlice_DoesNotModifySource(t *testing.T) {
	people := slices.Clone(testPeople)
	older := MapValue(FromSlice(people), func(p model.Person) model.Person {
		p.Age++
		return p
	})
	if _, err := Collect(context.Background(), older); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(people, testPeople) {
		t.Errorf("source changed: %v", people)
	}
}

func TestFrom_Iterator(t *testing.T) {
	p := From[string](&sliceIter[string]{items: []string{"Ford", "Audi"}})
	ctx := context.Background()

	got, err := Collect(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	if !strSliceEqual(got, []string{"Ford", "Audi"}) {
		t.Errorf("first run = %v, want [Ford Audi]", got)
	}
	again, err := Collect(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 0 {
		t.Errorf("second run = %v, want the consumed iterator to be empty", again)
	}
}

func TestMap(t *testing.T) {
	dtos := Map(FromSlice(testPeople), func(_ context.Context, p model.Person) (model.PersonDTO, error) {
		return model.ToDTO(p), nil
	})
	got, err := Collect(context.Background(), dtos)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(testPeople) {
		t.Fatalf("len = %d, want %d", len(got), len(testPeople))
	}
	if got[0] != (model.PersonDTO{ID: 1, Name: "Ada", Age: 36}) {
		t.Errorf("got[0] = %v", got[0])
	}
}

func TestMap_Error(t *testing.T) {
	errNoPrice := errors.New("no price")
	prices := Map(FromSlice(testCars), func(_ context.Context, c model.Car) (float64, error) {
		if c.Make == "Audi" {
			return 0, errNoPrice
		}
		return c.Price, nil
	})
	got, err := Collect(context.Background(), prices)
	if !errors.Is(err, errNoPrice) {
		t.Fatalf("err = %v, want %v", err, errNoPrice)
	}
	if len(got) != 1 || got[0] != 12000.50 {
		t.Errorf("values before the error = %v, want [12000.5]", got)
	}
}

func TestMap_Format(t *testing.T) {
	labels := Map(FromSlice(testCars[:2]), func(_ context.Context, c model.Car) (string, error) {
		return fmt.Sprintf("%s %s", c.Make, c.Model), nil
	})
	got, err := Collect(context.Background(), labels)
	if err != nil {
		t.Fatal(err)
	}
	if !strSliceEqual(got, []string{"Ford Focus", "Audi A4"}) {
		t.Errorf("got %v", got)
	}
}

func TestFlatMap(t *testing.T) {
	garages := [][]model.Car{testCars[:2], nil, testCars[2:]}
	cars := FlatMap(FromSlice(garages), func(_ context.Context, g []model.Car) (Iterator[model.Car], error) {
		return &sliceIter[model.Car]{items: g}, nil
	})
	got, err := Collect(context.Background(), MapValue(cars, func(c model.Car) int { return c.ID }))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("ids = %v, want [1 2 3 4]", got)
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		keep func(model.Person) bool
		want []int
	}{
		{"adults excluded", model.AgeAtMost(18), []int{2, 3, 5}},
		{"by gender", model.GenderIs("MALE"), []int{2, 4}},
		{"nothing matches", model.AgeAtMost(10), []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Collect(context.Background(), Filter(FromSlice(testPeople), tc.keep))
			if err != nil {
				t.Fatal(err)
			}
			if ids := personIDs(got); !intSliceEqual(ids, tc.want) {
				t.Errorf("ids = %v, want %v", ids, tc.want)
			}
		})
	}
}

func TestTap(t *testing.T) {
	var seen []string
	observed := Tap(FromSlice(testPeople), func(_ context.Context, p model.Person) error {
		seen = append(seen, p.Name)
		return nil
	})
	got, err := Collect(context.Background(), Limit(observed, 2))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
	if !strSliceEqual(seen, []string{"Ada", "Ben"}) {
		t.Errorf("tap saw %v, want only the pulled records", seen)
	}
}

func TestTap_Error(t *testing.T) {
	failing := Tap(FromSlice(testCars), func(_ context.Context, c model.Car) error {
		if c.Price < 10000 {
			return fmt.Errorf("car %d below floor", c.ID)
		}
		return nil
	})
	_, err := Collect(context.Background(), failing)
	if err == nil || !strings.Contains(err.Error(), "car 3 below floor") {
		t.Errorf("err = %v, want the tap error", err)
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name string
		cars []model.Car
		want float64
	}{
		{"total price", testCars, 66500.75},
		{"empty yields the initial value", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			total := Reduce(FromSlice(tc.cars), 0.0, func(acc float64, c model.Car) float64 { return acc + c.Price })
			got, err := Collect(context.Background(), total)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0] != tc.want {
				t.Errorf("got %v, want [%v]", got, tc.want)
			}
		})
	}
}

func TestConcat(t *testing.T) {
	combined := Concat(
		FromSlice(testPeople[3:]),
		FromSlice[model.Person](nil),
		FromSlice(testPeople[:1]),
	)
	got, err := Collect(context.Background(), combined)
	if err != nil {
		t.Fatal(err)
	}
	if ids := personIDs(got); !intSliceEqual(ids, []int{4, 5, 1}) {
		t.Errorf("ids = %v, want [4 5 1]", ids)
	}
}

func TestDrain_Run(t *testing.T) {
	byMake := make(map[string]int)
	r := Drain(FromSlice(testCars), func(_ context.Context, c model.Car) error {
		byMake[c.Make]++
		return nil
	})
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if byMake["Ford"] != 2 || byMake["Audi"] != 1 || byMake["Kia"] != 1 {
		t.Errorf("byMake = %v", byMake)
	}
}

func TestForEach(t *testing.T) {
	var ages int
	err := ForEach(context.Background(), FromSlice(testPeople), func(_ context.Context, p model.Person) error {
		ages += p.Age
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if ages != 138 {
		t.Errorf("ages = %d, want 138", ages)
	}
}

func TestIter(t *testing.T) {
	ctx := context.Background()
	iter := FromSlice(testCars[:1]).Iter(ctx)
	defer iter.Close()

	c, ok, err := iter.Next(ctx)
	if err != nil || !ok || c.ID != 1 {
		t.Errorf("first Next: car=%v ok=%v err=%v", c, ok, err)
	}
	_, ok, err = iter.Next(ctx)
	if err != nil || ok {
		t.Errorf("second Next should be exhausted: ok=%v err=%v", ok, err)
	}
}

func TestChained_Pipeline(t *testing.T) {
	// cars -> yellow only -> price -> tap -> sum
	var tapped []float64
	yellow := Filter(FromSlice(testCars), model.ColorIs("yellow"))
	prices := MapValue(yellow, model.CarPrice)
	observed := Tap(prices, func(_ context.Context, p float64) error {
		tapped = append(tapped, p)
		return nil
	})
	total := Reduce(observed, 0.0, func(acc, p float64) float64 { return acc + p })

	got, err := Collect(context.Background(), total)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 20000.75 {
		t.Errorf("got %v, want [20000.75]", got)
	}
	if !slices.Equal(tapped, []float64{12000.50, 8000.25}) {
		t.Errorf("tapped = %v", tapped)
	}
}

func TestContext_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		run  func() error
	}{
		{"iterate", func() error {
			_, err := Collect(ctx, Iterate(0, func(n int) int { return n + 1 }))
			return err
		}},
		{"slice", func() error {
			_, err := Collect(ctx, Filter(FromSlice(testPeople), model.AgeAtMost(100)))
			return err
		}},
		{"empty slice", func() error {
			_, err := Collect(ctx, FromSlice[model.Car](nil))
			return err
		}},
		{"range", func() error {
			_, err := Collect(ctx, Range(0, 10))
			return err
		}},
		{"range closed", func() error {
			_, err := Count(ctx, RangeClosed(1, 3))
			return err
		}},
		{"drain", func() error {
			return Drain(FromSlice(testCars), func(context.Context, model.Car) error { return nil }).Run(ctx)
		}},
		{"collector", func() error {
			_, err := CollectWith(ctx, FromSlice(testCars), Summing(model.CarPrice))
			return err
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, context.Canceled) {
				t.Errorf("err = %v, want context.Canceled", err)
			}
		})
	}
}

func TestContext_CancelMidStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopAtBen := Tap(FromSlice(testPeople), func(_ context.Context, p model.Person) error {
		if p.Name == "Ben" {
			cancel()
		}
		return nil
	})
	got, err := Collect(ctx, stopAtBen)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if ids := personIDs(got); !intSliceEqual(ids, []int{1, 2}) {
		t.Errorf("ids before cancel = %v, want [1 2]", ids)
	}
}

func TestPipeline_Rerunnable(t *testing.T) {
	cheap := Filter(FromSlice(testCars), model.PriceAtMost(15500))
	for i := 0; i < 2; i++ {
		n, err := Count(context.Background(), cheap)
		if err != nil {
			t.Fatal(err)
		}
		if n != 3 {
			t.Errorf("run %d: count = %d, want 3", i, n)
		}
	}
}

// --- helpers ---

func intSliceEqual(a, b []int) bool { return slices.Equal(a, b) }

func strSliceEqual(a, b []string) bool { return slices.Equal(a, b) }
