package model

import "math/rand/v2"

// interviewCovers is the fixed catalog of cover assets served by the web
// client from its public directory.
var interviewCovers = []string{
	"/covers/adobe.png",
	"/covers/amazon.png",
	"/covers/facebook.png",
	"/covers/hostinger.png",
	"/covers/pinterest.png",
	"/covers/quora.png",
	"/covers/reddit.png",
	"/covers/skype.png",
	"/covers/spotify.png",
	"/covers/telegram.png",
	"/covers/tiktok.png",
	"/covers/yahoo.png",
}

// RandomCover picks a cover image reference for a new interview.
func RandomCover() string {
	return interviewCovers[rand.IntN(len(interviewCovers))]
}
