package syntax

// Expr is a node of the raw syntax tree, as produced by the parser and before
// any arity has been inferred.
type Expr interface{ isExpr() }

// Composition sequences its children functionally: outputs of one feed
// inputs of the next.
type Composition struct{ Exprs []Expr }

// Concatenation juxtaposes its children: each runs on its own window of a
// shared stack region.
type Concatenation struct{ Exprs []Expr }

// WordExpr invokes a primitive.
type WordExpr struct{ Word Word }

// Integer, Float and Text are literals.
type (
	Integer int64
	Float   float64
	Text    string
)

// Quotation defers Body as a first-class value.
type Quotation struct{ Body Expr }

// Nop is the empty program.
type Nop struct{}

// InfixLeft is the sugar "expr `op`".
type InfixLeft struct {
	Expr Expr
	Op   Word
}

// InfixRight is the sugar "`op` expr".
type InfixRight struct {
	Op   Word
	Expr Expr
}

// Branch pops a boolean and runs Then when it is true, Else otherwise.
type Branch struct{ Then, Else Expr }

func (Composition) isExpr()   {}
func (Concatenation) isExpr() {}
func (WordExpr) isExpr()      {}
func (Integer) isExpr()       {}
func (Float) isExpr()         {}
func (Text) isExpr()          {}
func (Quotation) isExpr()     {}
func (Nop) isExpr()           {}
func (InfixLeft) isExpr()     {}
func (InfixRight) isExpr()    {}
func (Branch) isExpr()        {}
