package accessor

// Version identifies this package's release.
const Version = "0.1.0"
