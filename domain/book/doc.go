// Package book implements the live per-symbol price-level order book.
// Each book keeps two red-black trees of aggregated price levels (bids
// descending, asks ascending) and applies NEW/CANCEL/TRADE order events
// under strict consistency rules: a failed event has no partial effect,
// and a level never rests at zero or negative quantity.
//
// BookRegistry owns all books and keys synchronization to the symbol,
// so ingestion and snapshot reads on different symbols proceed in
// parallel.
package book
