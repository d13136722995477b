package logistics

import "fmt"

// Example returns the reference network: two terminals, four warehouses and
// fourteen stores. Its maximum flow is 115.
func Example() Plan {
	p := Plan{
		Name:       "example",
		Terminals:  names("Terminal", 2),
		Warehouses: names("Warehouse", 4),
		Stores:     names("Store", 14),
	}
	route := func(from, to string, c int64) {
		p.Routes = append(p.Routes, Route{From: from, To: to, Capacity: c})
	}
	t := func(k int) string { return p.Terminals[k-1] }
	w := func(k int) string { return p.Warehouses[k-1] }
	s := func(k int) string { return p.Stores[k-1] }

	route(t(1), w(1), 25)
	route(t(1), w(2), 20)
	route(t(1), w(3), 15)
	route(t(2), w(3), 15)
	route(t(2), w(4), 30)
	route(t(2), w(2), 10)

	route(w(1), s(1), 15)
	route(w(1), s(2), 10)
	route(w(1), s(3), 20)
	route(w(2), s(4), 15)
	route(w(2), s(5), 10)
	route(w(2), s(6), 25)
	route(w(3), s(7), 20)
	route(w(3), s(8), 15)
	route(w(3), s(9), 10)
	route(w(4), s(10), 20)
	route(w(4), s(11), 10)
	route(w(4), s(12), 15)
	route(w(4), s(13), 5)
	route(w(4), s(14), 10)
	return p
}

func names(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return out
}
