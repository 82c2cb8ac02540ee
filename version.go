package main

// Version is the relcut CLI version, overridden at release time.
var Version = "dev"
