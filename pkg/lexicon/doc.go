// Package lexicon defines the static tables shared by the whole pipeline.
//
// The tables describe a fixed graph in the Sefer Yetzirah tradition: 10
// sefirot (vertices) and 22 Hebrew letters (edges), each letter connecting
// two sefirot. They are parsed once from an embedded YAML definition at
// process start and are immutable afterwards; accessors return copies.
//
// # Canonical Order
//
// Sefirot have a canonical order (keter first, malkhut last) that every
// activity vector in the module is aligned with. Use Index to translate a
// transliterated name into a vector position.
//
// # Final Forms
//
// The five letters with final (sofit) forms fold to their base letter during
// lookup, so ך counts as כ, ם as מ, and so on.
package lexicon
