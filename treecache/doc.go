// SPDX-License-Identifier: MIT
// Package treecache keeps the most recently requested reconstruction trees,
// keyed by (reconstruction time, anchor plate), so that repeated requests
// for the same time and anchor share one immutable recon.Tree instead of
// rebuilding it.
//
// Trees are built on a miss by a caller-supplied CreateFunc;
// FromSequences adapts a fixed set of rotation sequences into one. When
// the cache is full the least recently used tree is evicted. Evicted trees
// stay valid for whoever still holds them.
//
// Cache is safe for concurrent use.
package treecache
