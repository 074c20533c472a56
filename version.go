package attain

// Version is the current release of the attain library.
const Version = "0.1.0"
