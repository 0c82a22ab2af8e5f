// Package boundary is the call surface a foreign host uses to build trees
// and receive actions.
//
// Everything that crosses the boundary by reference is a handle: builders,
// nodes, class sets, buffers (strings, id vectors, length runs,
// coordinates, custom-action arrays), tree updates, action handlers,
// adapters and queued events. Handles are generation checked, so a freed
// or consumed handle is detected instead of reaching freed memory, and a
// handle of one kind passed where another is expected is rejected.
//
// Every operation is total. A null, stale or mistyped argument, or a fault
// inside the operation, yields the inert default of the result type (zero,
// false, a null handle, an absent optional). The failure is kept for
// LastError and logged.
//
// Ownership follows the C bindings:
//
//   - BuilderBuild consumes the builder handle.
//   - SetNodeIDs moves its buffer: the handle is freed by the call.
//   - SetLengths, SetCoords, SetCustomActions and every string argument
//     borrow: the caller still frees them.
//   - Getters that return a buffer hand over a fresh one per call; free it
//     with StringFree, BufferFree or ArrayFree.
//   - TreeUpdateNew consumes every node handle it is given. AdapterUpdate
//     consumes the update handle.
//   - AdapterNew consumes the handler handle.
package boundary
