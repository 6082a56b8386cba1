// Package eos implements the expression engine of a graphing calculator.
//
// Expressions are sequences of keys, as a user would press them: digits,
// operators, functions, parentheses, constants, the free variable X, and the
// matrix slots [A] through [J]. Precedence follows the calculator's Equation
// Operating System: functions bind tightest, then ^ and implied
// multiplication, then × and ÷, then + and -. "2+3×4" is 14, "2^3^2" is
// 2^(3^2), and "6÷2X" is 6÷(2X). Functions apply to the parenthesized group
// after them, and parentheses still open when the expression ends are closed
// automatically, so "sin(0" is sin(0).
//
// Comparisons and the logical operators have negative precedences, and
// precedences are compared by magnitude. A comparison therefore ranks with +
// and -, and groups left to right with them, so "3=1+2" is (3=1)+2. The and
// operator ranks with × and ÷, and or and xor rank with ^. Parenthesize the
// operands of logical operators, as in "(X>1) and (X<5)".
//
// Compile an expression once and evaluate it with many values of X, as when
// drawing a graph, or use Calculate to do both at once. Results are scalars
// or matrices; Fraction renders a scalar as a fraction.
//
// Division by zero is not an error. The quotient is 0, as it is for the
// inverse of 0.
package eos
