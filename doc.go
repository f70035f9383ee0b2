// Package projector implements the projection generation engine behind
// the Kaspa Portfolio Projector (kpp). Given a holding, a spot price, a
// circulating supply and an exchange-rate snapshot, it produces a table
// of hypothetical unit prices with the portfolio value and implied
// market capitalization at each one.
//
// The core functionalities include:
//   - Interval Generation: a sorted, deduplicated spread of USD unit
//     prices, linearly spaced below the current price and geometrically
//     spaced above it, anchored at the rounded spot price.
//   - Projection Rows: portfolio value and market cap per interval
//     price, each row classified below/at/above the anchor.
//   - Currency Display: conversion of the USD table into a display
//     currency, collapsing rows that round to the same display price
//     without ever losing the anchor row.
//   - Price Explorer: a reversible log-scale mapping between a
//     normalized slider position and a price, with nearest-row lookup
//     against a generated table.
//
// The engine is synchronous and side-effect-free: it performs no I/O,
// holds no state between calls, and returns the same table for the same
// inputs. Market data comes from the coingecko subpackage; rendering
// lives in renderer. This package is the foundational logic for the
// `kpp` command-line tool.
package projector
