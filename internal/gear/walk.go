package gear

// Walk applies each visitor to root in turn. It stops at the first failed
// traversal and returns its error.
func Walk(root Node, visitors ...Visitor) error {
	for _, v := range visitors {
		if err := root.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

// CountKits returns the number of kits reachable from root, nested kits
// included.
func CountKits(root Node) int {
	var counter kitCounter
	_ = root.Accept(&counter)
	return counter.count
}

type kitCounter struct {
	BaseVisitor
	count int
}

func (k *kitCounter) EnterKit(*Kit) error {
	k.count++
	return nil
}
