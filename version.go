package graft

// Version is the current release of the graft library.
var Version = "0.3.0"
