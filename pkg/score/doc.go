// Package score ranks sefirot by how specific their activity is to a text,
// relative to a baseline computed over a reference corpus.
//
// Specificity follows the TF-IDF intuition: a sefira's activity in the
// analyzed text divided by its average activity across the corpus. A sefira
// that is merely common everywhere scores low; one that is unusually active
// here scores high.
//
// # Zero Baseline
//
// When a sefira has zero baseline activity the ratio is undefined. The
// scorer then uses the raw activity itself as the specificity: relative to a
// corpus where the sefira never appears, any activity at all is maximally
// specific. This keeps the ranking total and avoids a division fault.
package score
