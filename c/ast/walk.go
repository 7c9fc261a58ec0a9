package ast

// Walk visits n and then its children in source order. Children are
// skipped when visit returns false.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}

	switch n := n.(type) {
	case *FunctionDeclaration:
		for _, stmt := range n.Body {
			Walk(stmt, visit)
		}
	case *VarDeclaration:
		Walk(n.Rhs, visit)
	case *ExprStatement:
		Walk(n.X, visit)
	case *Return:
		Walk(n.X, visit)
	case *If:
		Walk(n.Cond, visit)
		Walk(n.Then, visit)
		Walk(n.Else, visit)
	case *While:
		Walk(n.Cond, visit)
		Walk(n.Body, visit)
	case *For:
		Walk(n.Init, visit)
		Walk(n.Cond, visit)
		Walk(n.Post, visit)
		Walk(n.Body, visit)
	case *Block:
		for _, stmt := range n.Body {
			Walk(stmt, visit)
		}
	case *Prefix:
		Walk(n.X, visit)
	case *Postfix:
		Walk(n.X, visit)
	case *SizeOf:
		Walk(n.X, visit)
	case *Binary:
		Walk(n.Left, visit)
		Walk(n.Right, visit)
	case *Paren:
		Walk(n.X, visit)
	case *Conditional:
		Walk(n.Cond, visit)
		Walk(n.Then, visit)
		Walk(n.Else, visit)
	case *Call:
		Walk(n.Fn, visit)
		for _, arg := range n.Args {
			Walk(arg, visit)
		}
	case *Index:
		Walk(n.X, visit)
		Walk(n.Subscript, visit)
	}
}
