package hellopass

// Version is the current hellopass release.
const Version = "0.1.0"
