package model

// Greetings returned verbatim by the HTTP routes.
const (
	HomepageGreeting = "Homepage!!"
	HelloGreeting    = "Hello, World!"
)
