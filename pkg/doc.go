// Package pkg provides the libraries behind gramod, which computes Graham's
// number modulo N.
//
// # Overview
//
// Graham's number is a power tower of 3s far too tall to write down, yet its
// residue modulo any N is fixed once the tower is high enough. The pkg
// directory is organized as follows:
//
//  1. [tower] - The reducer: orbit walking, level alignment and the trace
//  2. [pipeline] - Runs reductions with logging and hooks for the frontends
//  3. [server] - The HTML form frontend
//  4. [render] - Graphviz diagrams of the orbits of every level
//  5. [config], [errors], [observability], [metrics], [buildinfo] - Support
//
// # Architecture
//
//	N (console prompt, form field)
//	         ↓
//	    [errors.ParseModulus] (validate, clamp)
//	         ↓
//	    [pipeline.Runner] (hooks, logging)
//	         ↓
//	    [tower.Run] (levels, trace)
//	         ↓
//	    G mod N
//
// # Quick Start
//
//	r, err := tower.Reduce(3, 1000, nil)
//	// r == 387
package pkg
