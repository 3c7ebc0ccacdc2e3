// Package headerbrute guesses a short secret header value by brute force.
// It streams every string over a small alphabet up to a maximum length, sends each one to a target in a request header,
// and reports responses whose flag header carries a value with the expected prefix.
// Candidates are never held in memory; each length is streamed through a bounded pool of workers and fully drained before the next length starts.
package headerbrute
