package aconfig

// Version is written into the header of generated files.
const Version = "v0.1.0"
