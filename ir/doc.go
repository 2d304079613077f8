// Package ir provides the tree representation shared by every feedxml
// package.
//
// # Node Structure
//
// A Node is a tagged union. The Type field says which of the other fields
// are meaningful:
//
//   - AbsentType: an explicitly absent value. It is the zero Type, and a nil
//     *Node is treated the same way.
//   - NumberType: Int64, Float64, or Number as a textual fallback
//   - StringType: String
//   - ArrayType: ordered Values
//   - ObjectType: Fields[i] is the key for Values[i]
//
// Object fields keep insertion order and must be unique within an object.
// Order is significant: it becomes the order of emitted XML elements.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "MessageID", Val: ir.FromInt(1)},
//	    {Key: "Body", Val: ir.FromField("Status", ir.FromString("Success"))},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.FromString("y")})
//
// # Ownership
//
// Transformations in this module never mutate a node they receive; they
// build new containers and may share scalar leaves with their input. Code
// that wants to mutate a tree should Clone it first.
package ir
