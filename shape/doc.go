// Package shape canonicalizes loosely shaped trees into the form the XML
// encoder expects.
//
// # Stages
//
// A tree passes through four stages, in order:
//
//   - StripUndefined drops object fields holding the absent marker.
//   - StripEmpty drops object fields holding empty objects or arrays.
//   - CollapseDuplicates flattens an array entry {k: [{k: ...}, {k: ...}]}
//     into the entries it wraps.
//   - EnsureArrays rewrites every container field into an array of single
//     field objects, one per child element.
//
// Later stages rely on earlier ones: absent and empty values would
// otherwise be taken for structure by the last two.
//
// # Traversal
//
// Every stage is a MappingFunc plugged into Every, which supplies the
// array and scalar cases. Stages never mutate their input.
//
// # Fan-out
//
// EnsureArrays splits an object nested in a repeated field into one slot
// per field:
//
//	{Message: [{A: 1, B: 2}]}  =>  {Message: [{A: 1}, {B: 2}]}
//
// The encoder emits each slot as a child of <Message>, so field order is
// preserved in the output. Producers depend on this shape.
package shape
