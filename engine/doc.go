// Package engine implements the two cooperative slice-processing engines at
// the heart of sliceflow. Both fan one task per element out onto a
// schedule.Scheduler, then join the completions back into an index-ordered
// aggregate, differing only in their failure policy:
//
//   - Filter: fail-fast. The first element fault observed by the join rejects
//     the whole call; in-flight tasks still run but their outcomes are
//     discarded. On success the result is the order-preserving subsequence of
//     elements the predicate kept.
//   - Each: settle-all. Every element's fulfilled value or rejection reason is
//     captured as an Outcome at its own index; one failing element never
//     affects another, and the call itself does not fail on element faults.
//
// Aggregated results are always in input-index order regardless of the order
// in which tasks actually complete. No ordering is guaranteed between the
// execution of individual tasks, and a dispatched task cannot be cancelled.
//
// All len(s) tasks are dispatched unconditionally before the join starts.
// There is no throttling or chunking: a very large slice, or a slow element
// function, will saturate whatever the scheduler shares its capacity with.
// That trade-off is the caller's to manage.
package engine
