package liteemit_test

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sonirico/liteemit"
)

type order struct {
	ID    string
	Total float64
}

var orderPlaced = liteemit.NewEvent[order]("order.placed")

func Example() {
	d := liteemit.New(liteemit.WithErrorHandler(func(err error) {
		fmt.Println("error:", err)
	}))

	d.On(liteemit.Any.Bind(liteemit.ListenAll(func(event liteemit.Name, _ any) error {
		fmt.Println("saw", event)
		return nil
	})))

	off := d.On(orderPlaced.Bind(liteemit.Listen(func(o order) error {
		fmt.Printf("order %s: %.2f\n", o.ID, o.Total)
		return nil
	})))

	d.On(orderPlaced.Bind(liteemit.Listen(func(o order) error {
		if o.Total > 100 {
			return errors.New("needs review")
		}
		return nil
	})))

	d.Emit(orderPlaced.With(order{ID: "A-1", Total: 250}))
	off()
	d.Emit(orderPlaced.With(order{ID: "A-2", Total: 10}))

	// Output:
	// saw order.placed
	// order A-1: 250.00
	// error: needs review
	// saw order.placed
}

func ExampleDispatcher_Once() {
	d := liteemit.New()
	ready := liteemit.NewEvent[struct{}]("ready")

	d.Once(ready.Bind(liteemit.Listen(func(struct{}) error {
		fmt.Println("ready!")
		return nil
	})))

	d.Emit(ready.With(struct{}{}))
	d.Emit(ready.With(struct{}{}))

	// Output:
	// ready!
}

func ExampleDispatcher_EmitWait() {
	d := liteemit.New(liteemit.WithErrorHandler(func(err error) {
		fmt.Println("async error:", err)
	}))
	uploaded := liteemit.NewEvent[string]("file.uploaded")

	d.On(uploaded.Bind(liteemit.ListenAsync(func(path string) liteemit.Completion {
		return liteemit.Go(func() error {
			return errors.Errorf("cannot scan %s", path)
		})
	})))

	if err := d.EmitWait(context.Background(), uploaded.With("/tmp/a.txt")); err != nil {
		fmt.Println("wait:", err)
	}
	fmt.Println("all listeners done")

	// Output:
	// async error: cannot scan /tmp/a.txt
	// all listeners done
}

func ExampleChain() {
	greeted := liteemit.NewEvent[string]("greeted")
	hello := liteemit.Listen(func(name string) error {
		fmt.Println("hello,", name)
		return nil
	})

	d := liteemit.Chain(liteemit.New()).
		On(greeted.Bind(hello)).
		Emit(greeted.With("gopher")).
		Off(greeted.Bind(hello)).
		Emit(greeted.With("nobody")).
		Unwrap()

	fmt.Println(d.ListenerCount(greeted.Key()))

	// Output:
	// hello, gopher
	// 0
}
