// Package logistics turns a named terminal → warehouse → store plan into an
// indexed flow network.
//
// A [Plan] lists sites by name per layer plus the capacitated routes between
// them. [Build] numbers the sites, adds a super-source feeding every terminal
// and a super-sink drained by every store (both through unbounded edges), and
// returns a [Layout] carrying the network, its role sets and the name index.
//
//	layout, err := logistics.Build(logistics.Example())
//	if err != nil {
//	    return err
//	}
//	res, err := flow.Solve(layout.Network, nil)
package logistics
