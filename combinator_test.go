// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remotedata_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/remotedata"
)

func TestMapSuccess(t *testing.T) {
	r := remotedata.Map(remotedata.Success[string](21), func(x int) int { return x * 2 })

	if !r.IsSuccess() {
		t.Fatal("expected Success")
	}
	if v, _ := r.GetData(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestMapRefetching(t *testing.T) {
	// The stale payload stays transformable, and the value stays pending.
	r := remotedata.Map(remotedata.Refetching[string](21), func(x int) int { return x * 2 })

	if !r.IsRefetching() {
		t.Fatal("expected Refetching")
	}
	if v, _ := r.GetData(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestMapPendingSkipsFunc(t *testing.T) {
	called := false
	r := remotedata.Map(remotedata.Pending[string, int](), func(x int) int {
		called = true
		return x
	})

	if called {
		t.Fatal("f invoked on bare Pending")
	}
	if !r.IsPending() || r.IsRefetching() {
		t.Fatal("expected bare Pending")
	}
}

func TestMapPassthrough(t *testing.T) {
	f := func(x int) string { return strconv.Itoa(x) }

	if r := remotedata.Map(remotedata.Initial[string, int](), f); !r.IsInitial() {
		t.Fatal("expected Initial")
	}
	r := remotedata.Map(remotedata.Failure[string, int]("boom"), f)
	if !r.IsFailure() {
		t.Fatal("expected Failure")
	}
	if e, _ := r.GetError(); e != "boom" {
		t.Fatalf("got error %q, want %q", e, "boom")
	}
}

func TestMapLeft(t *testing.T) {
	r := remotedata.MapLeft(remotedata.Failure[int, string](404), strconv.Itoa)
	if e, _ := r.GetError(); e != "404" {
		t.Fatalf("got error %q, want %q", e, "404")
	}

	// Non-failure variants pass through with their payloads intact.
	s := remotedata.MapLeft(remotedata.Success[int]("data"), strconv.Itoa)
	if v, _ := s.GetData(); v != "data" {
		t.Fatalf("got %q, want %q", v, "data")
	}
	p := remotedata.MapLeft(remotedata.Refetching[int]("stale"), strconv.Itoa)
	if !p.IsRefetching() {
		t.Fatal("expected Refetching")
	}
	if r := remotedata.MapLeft(remotedata.Pending[int, string](), strconv.Itoa); !r.IsPending() {
		t.Fatal("expected Pending")
	}
	if r := remotedata.MapLeft(remotedata.Initial[int, string](), strconv.Itoa); !r.IsInitial() {
		t.Fatal("expected Initial")
	}
}

func TestFlatMapSuccess(t *testing.T) {
	r := remotedata.FlatMap(remotedata.Success[string](21), func(x int) remotedata.RemoteData[string, int] {
		return remotedata.Success[string](x * 2)
	})

	if v, _ := r.GetData(); !r.IsSuccess() || v != 42 {
		t.Fatalf("got %v, want Success(42)", r)
	}
}

func TestFlatMapPromotesRefetching(t *testing.T) {
	// Unlike Map, FlatMap returns f's result directly, so binding a
	// Refetching value can yield a Success.
	r := remotedata.FlatMap(remotedata.Refetching[string](21), func(x int) remotedata.RemoteData[string, int] {
		return remotedata.Success[string](x * 2)
	})

	if !r.IsSuccess() {
		t.Fatal("expected Success")
	}
	if v, _ := r.GetData(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestFlatMapIntoFailure(t *testing.T) {
	r := remotedata.FlatMap(remotedata.Success[string](21), func(x int) remotedata.RemoteData[string, int] {
		return remotedata.Failure[string, int]("rejected")
	})

	if e, _ := r.GetError(); !r.IsFailure() || e != "rejected" {
		t.Fatalf("got %v, want Failure(%q)", r, "rejected")
	}
}

func TestFlatMapPassthrough(t *testing.T) {
	called := false
	f := func(x int) remotedata.RemoteData[string, string] {
		called = true
		return remotedata.Success[string](strconv.Itoa(x))
	}

	if r := remotedata.FlatMap(remotedata.Initial[string, int](), f); !r.IsInitial() {
		t.Fatal("expected Initial")
	}
	if r := remotedata.FlatMap(remotedata.Pending[string, int](), f); !r.IsPending() || r.IsRefetching() {
		t.Fatal("expected bare Pending")
	}
	r := remotedata.FlatMap(remotedata.Failure[string, int]("boom"), f)
	if e, _ := r.GetError(); !r.IsFailure() || e != "boom" {
		t.Fatalf("got %v, want Failure(%q)", r, "boom")
	}
	if called {
		t.Fatal("f invoked on a payload-less variant")
	}
}

func TestMatchBranches(t *testing.T) {
	describe := func(r remotedata.RemoteData[string, int]) string {
		return remotedata.Match(r,
			func() string { return "initial" },
			func(stale remotedata.Option[int]) string {
				if v, ok := stale.Get(); ok {
					return "refetching " + strconv.Itoa(v)
				}
				return "pending"
			},
			func(err string) string { return "failure " + err },
			func(v int) string { return "success " + strconv.Itoa(v) },
		)
	}

	tests := []struct {
		name  string
		value remotedata.RemoteData[string, int]
		want  string
	}{
		{"initial", remotedata.Initial[string, int](), "initial"},
		{"pending", remotedata.Pending[string, int](), "pending"},
		{"refetching", remotedata.Refetching[string](7), "refetching 7"},
		{"failure", remotedata.Failure[string, int]("boom"), "failure boom"},
		{"success", remotedata.Success[string](42), "success 42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describe(tt.value); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
