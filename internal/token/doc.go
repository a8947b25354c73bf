// Package token defines lexical token kinds and trivia for the ase compiler.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - leading_trivia + Text, concatenated for every token in source order,
//     reproduces the original file byte-for-byte (see internal/lexer).
//   - Field labels assigned by the parser live on the CST child that holds
//     the token (internal/cst), not on Kind or Token.Name; the same Kind can
//     carry different field labels in different productions.
package token
