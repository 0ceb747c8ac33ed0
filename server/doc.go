// Package server runs the maze TCP services.
//
// What:
//
//   - Server accepts TCP connections and hands each one to a Strategy on a
//     bounded worker pool. The accept loop wakes every listening interval to
//     check whether Stop was requested.
//   - GenerateMaze reads a gob GenerateRequest, generates a maze and replies
//     with the gob-encoded, Alternating-compressed byte layout.
//   - SolveMaze reads a gob-encoded byte layout, solves it (or loads a cached
//     answer) and replies with a gob SolutionReply.
//
// One request and one reply per connection; the server closes the
// connection after the strategy returns.
//
// Options:
//
//   - WithListeningInterval(d) accept wake-up period (default 1s).
//   - WithPoolSize(n)          concurrent handlers (default 4).
//   - WithLogger(l)            logrus logger (default logrus.New()).
//   - WithIOTimeout(d)         per-connection read/write deadline (default none).
//
// Errors:
//
//   - ErrServerClosed  Start after Stop.
//   - ErrServerRunning Start on a running server.
//   - ErrBadRequest    the client sent an undecodable or invalid request.
package server
