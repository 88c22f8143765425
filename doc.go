// Package dentaku implements a small line-oriented calculator.
//
// A program is a sequence of lines, and each line is one expression. Lines are
// evaluated in order, and variables bound by one line can be used by the
// lines after it. Whitespace is ignored, except that it ends a number: "2 3"
// is two numbers, while "s q r t 4" is the same as "sqrt4".
//
// Variables are single lowercase letters. Operators are + - * / and ^, where
// * / and ^ have the same precedence and group left to right, so "2^3^2" is
// 64. Two factors written next to each other are multiplied: "2(x+1)", "2x",
// and "2 3" are all products.
//
// There are three built-in functions:
//
//	set(v, expr)                binds v to expr and evaluates to it
//	sum(v, start, end, expr)    adds expr for v from start to end
//	sqrt(expr)                  square root
//
// The bounds of sum are plain numbers. Its variable stays bound to the last
// value it took.
//
// Brackets and function calls may nest at most 10000 deep in one line.
//
package dentaku
