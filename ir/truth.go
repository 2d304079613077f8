package ir

// IsAbsent reports whether node is the absent marker. A nil node is absent.
func IsAbsent(node *Node) bool {
	return node == nil || node.Type == AbsentType
}

// IsEmpty reports whether node is a container without entries.
// Scalars and absent values are never empty.
func IsEmpty(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType:
		return len(node.Fields) == 0
	case ArrayType:
		return len(node.Values) == 0
	default:
		return false
	}
}

func IsContainer(node *Node) bool {
	return node != nil && !node.Type.IsLeaf()
}

func IsScalar(node *Node) bool {
	return node != nil && node.Type.IsScalar()
}
