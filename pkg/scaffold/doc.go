// Package scaffold dispatches template units against an answer set. Each
// Template either renders file content or returns ErrSkip; the Dispatcher
// walks a Registry in registration order, trims emitted content and resolves
// output paths (an explicit CustomPath, or a path derived from the template
// name). Nothing here touches the file system.
package scaffold
