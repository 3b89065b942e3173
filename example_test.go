package sliceflow_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/sliceflow"
	"github.com/hupe1980/sliceflow/schedule"
)

func ExampleAsyncFilter() {
	kept, err := sliceflow.AsyncFilter(context.Background(), []int{1, 2, 3, 4, 5}, func(n, _ int, _ []int) (bool, error) {
		return n%2 == 0, nil
	}, func(o *sliceflow.Options) {
		// Inline scheduler keeps the example deterministic; the default
		// runs each element task on its own goroutine.
		o.Scheduler = schedule.Immediate{}
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(kept)
	// Output: [2 4]
}

func ExampleAsyncEach() {
	outcomes, err := sliceflow.AsyncEach(context.Background(), []string{"a", "", "c"}, func(s string, _ int, _ []string) (string, error) {
		if s == "" {
			return "", fmt.Errorf("empty element")
		}
		return s + "!", nil
	}, func(o *sliceflow.Options) {
		o.Scheduler = schedule.Immediate{}
	})
	if err != nil {
		panic(err)
	}

	for i, o := range outcomes {
		if o.Rejected() {
			fmt.Printf("%d: %s (%v)\n", i, o.State, o.Err)
			continue
		}
		fmt.Printf("%d: %s (%s)\n", i, o.State, o.Value)
	}
	// Output:
	// 0: fulfilled (a!)
	// 1: rejected (empty element)
	// 2: fulfilled (c!)
}
