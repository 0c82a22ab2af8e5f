// Package node holds the accessibility node model: a mutable Builder, the
// immutable Node it produces and the ClassSet that lets nodes share their
// role, actions and property layout.
//
// Every property is declared once in a registry (see Properties). Typed
// keys such as Name, Children or Bounds give compile-time access:
//
//	b := node.NewBuilder(types.RoleButton)
//	node.Name.Set(b, "Press me")
//	node.Bounds.Set(b, types.Rect{X0: 0, Y0: 0, X1: 120, Y1: 40})
//	b.AddAction(types.ActionFocus)
//	n := b.Build(classes)
//
// The descriptor functions Get, Set, Push and Clear address the same
// properties dynamically, which is what the C boundary, the snapshot
// format and the command line use.
//
// Property shapes fall into five categories:
//
//   - flags, present or absent
//   - scalars (ids, strings, numbers, colors, enums, geometry), optional
//   - vectors with push (relations, custom actions)
//   - length runs, empty when unset
//   - coordinates, which distinguish absent from empty
package node
