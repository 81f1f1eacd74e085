/* Package main: obsc, a small concatenative language with arity inference

Programs are built purely by sequencing fragments, each with a fixed stack
effect written (in→out): how many values it consumes and how many it produces.
There are no variables; everything happens on one stack.

	2 2 +                 ⍝ composition: (0→1)
	1 2 3 4 −;−           ⍝ juxtaposition: each − works on its own pair
	⍬`,`1`,`2             ⍝ infix sugar, the same as ⍬ 1 , 2 ,
	10 [⇈ ⎕ 1 − ⇈ 0 >] ∇  ⍝ a quotation run by the loop word

Composition feeds one fragment's outputs to the next. Juxtaposition, written
with ";", gives each fragment a private window of the stack as wide as its
own input arity, retaining the rest until its turn. A backquoted word between
two operands applies it infix; a backquoted word with a missing operand is
padded with identity slots, which cost nothing at run time.

Before anything runs, every fragment's arity is inferred; a whole program
must need no inputs, so stack underflow is impossible in a well annotated
program and is treated as an internal invariant violation when it happens.

Words:

	> = <      compare two integers or two floats
	+ − × ÷    arithmetic; - * / are accepted as ASCII spellings
	↔ ⇈ ↓ ·    swap, duplicate, drop, identity
	⍬ , ⍘      empty list, append at the back, behead from the front
	⎕          print an integer, float, boolean or text
	∇          loop a (1→2) quotation over a seed while it leaves true on top
	{a | b}    pop a boolean and run a or b

Text is written between single quotes, with \' and \\ escapes. Comments run
from ⍝ to the end of the line.

Usage:

	obsc [-trace] [-dump] [-i] [-tee path] [file]

With no file, the program is read from standard input; when that is a
terminal, or -i is given, an interactive session runs each line as its own
program and echoes whatever stack remains.
*/
package main
