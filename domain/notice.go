package domain

import (
	"fmt"
	"strings"
)

const (
	AnonymousName        = "Anonymous"
	BannedCommand        = "!banned"
	WelcomeMessage       = "Welcome to the chat server!"
	ShutdownNotice       = "Server is shutting down"
	PhrasesUpdatedNotice = "Banned phrases have been updated"
)

// Instructions is the block sent to a client once its name is registered.
var Instructions = []string{
	"Instructions:",
	"- To send to all: just type your message",
	"- To send to specific user: @username message",
	"- To send to multiple users: @user1,user2 message",
	"- To send to all except some: @!user1,user2 message",
	"- To get banned phrases: !banned",
}

func JoinedNotice(name string) string {
	return name + " has joined the chat"
}

func LeftNotice(name string) string {
	return name + " has left the chat"
}

func RosterNotice(names []string) string {
	return "Connected clients: " + strings.Join(names, ", ")
}

func RejectionNotice(phrase string) string {
	return fmt.Sprintf("Server: Message contains banned content ('%s') and was not sent", phrase)
}

func RenamedNotice(wanted, assigned string) string {
	return fmt.Sprintf("Server: Name '%s' is taken, you are now known as '%s'", wanted, assigned)
}

func BannedListReply(phrases []string) string {
	return "Banned phrases: " + strings.Join(phrases, ", ")
}
