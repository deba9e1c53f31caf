// Package xcc implements Knuth's Algorithm C (TAOCP 7.2.2.1): exact
// covering with colors via dancing links.
//
// Given a universe of primary and secondary items and a collection of
// named subsets ("options") each covering some of those items, the
// package enumerates every selection of subsets such that each primary
// item is covered exactly once and every secondary item touched by the
// selection is assigned a single, mutually agreed color. A secondary
// item may be left uncovered entirely.
//
// The core data structure is a grid: two index-addressed arrays (item
// headers and node cells) encoding four interleaved circular
// doubly-linked lists. Searching the grid is destructive but fully
// reversible — an iterator obtained from a Grid mutates it in place
// while the iterator is alive and restores it exactly on Close.
//
// This package has no bindings for specific puzzles (sudoku, N-queens,
// polyomino tiling, word search); those are built on top of it.
package xcc
