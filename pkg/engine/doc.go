// Package engine adapts github.com/dlclark/regexp2 as the matching backend.
//
// regexp2 accepts Perl-style syntax including lookahead, which the URL rules
// depend on and which the standard library's RE2 engine rejects. Before
// compiling, POSIX bracket expressions such as [[:alpha:]] are rewritten into
// ASCII ranges because the backend does not understand them natively.
//
// Compile failures wrap ErrPatternCompile; matches that exceed Options.Timeout
// wrap ErrMatchTimeout. Patterns are compiled on every call to Match.
package engine
