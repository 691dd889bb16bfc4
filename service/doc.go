// Package service orchestrates the core components of the
// snapshot store: book registry, WAL, sequencer, and trade feed.
//
// It provides a clean API for ingesting events and rebuilding
// state after restart, decoupled from network transports like gRPC.
package service
