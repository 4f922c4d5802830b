// Package textutil provides the text canonicalization primitives the search
// engine compares on.
//
// Normalize produces the comparable form every ranking signal uses: accents
// are separated via Unicode NFD decomposition and their combining marks
// dropped, letters are lowercased, and anything that is not an ASCII letter
// or digit becomes a space before whitespace runs collapse to one. The result
// is that "Spider-Man", "Spider Man", and "spider.man" all normalize to the
// same string. Tokenize splits the normalized form into words, and Acronym
// derives the first-letter acronym that lets a query like "mha" find
// "My Hero Academia".
package textutil
