// Package transit holds the search and map-framing logic behind the rider
// front end: matching stop names, selecting routes between two places,
// picking the buses that serve them and deciding where the map should look.
//
// Everything here is synchronous and pure. Callers pass snapshots of routes
// and buses; nothing in this package mutates them or keeps hidden state.
package transit
