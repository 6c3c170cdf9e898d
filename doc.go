// Package knightpath finds shortest knight paths on a standard 8×8 chessboard.
//
// Under the hood, everything is organized under three packages:
//
//	board/  — Square, algebraic notation, and the fixed knight-offset table
//	bfs/    — level-synchronous breadth-first search over a dense vertex space
//	knight/ — FindPath and Distance, the pathfinder built on board + bfs
//
// plus the knightpath command (cmd/knightpath), which prints a path or
// serves GET /path?from=a1&to=h8 over HTTP.
//
// Quick example:
//
//	path, _ := knight.FindPath(board.Square{File: 0, Rank: 0}, board.Square{File: 7, Rank: 7})
//	fmt.Println(path) // a1 … h8, six moves
//
//	go get github.com/katalvlaran/knightpath
package knightpath
