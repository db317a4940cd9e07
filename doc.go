// Package tern is a reactive terminal rendering core.
//
// Users import this single package for the complete public API: the
// signal graph that drives re-renders, declarative box/text elements,
// flexbox layout on integer terminal cells, and a frame-diffing
// renderer that emits minimal terminal bytes.
package tern
