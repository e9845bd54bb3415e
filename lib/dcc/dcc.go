// Copyright (c) 2017 Darren Whitlen <darren@kiwiirc.com>
// released under the MIT license

package ircdcc

import (
	"encoding/binary"
	"errors"
	"strconv"
	"strings"

	"net"

	"code.cloudfoundry.org/bytefmt"
	"github.com/goshuirc/irc-go/ircmsg"
	"github.com/goshuirc/ircname/lib"
	"github.com/goshuirc/ircname/lib/ctcp"
)

var (
	errNoSender    = errors.New("DCC offers need a sender")
	errBadAddress  = errors.New("DCC offers need an IPv4 or IPv6 address")
	errBadPort     = errors.New("DCC port must be between 1 and 65535")
	errBadFilename = errors.New("DCC filename is empty or contains a disallowed character")
	errBadSize     = errors.New("DCC sizes and positions cannot be negative")
)

/**
 * Offers are the payloads of DCC requests. They are built from names that
 * have already been parsed, and only check their own fields.
 */

// ChatOffer is a DCC CHAT request.
type ChatOffer struct {
	Sender ircname.Nickname
	IP     net.IP
	Port   int
}

// Validate returns an error if the offer cannot be sent.
func (o ChatOffer) Validate() error {
	if o.Sender.IsZero() {
		return errNoSender
	}
	if _, err := encodeAddress(o.IP); err != nil {
		return err
	}
	return checkPort(o.Port)
}

// Body returns the CTCP body of the offer.
func (o ChatOffer) Body() (string, error) {
	err := o.Validate()
	if err != nil {
		return "", err
	}

	address, _ := encodeAddress(o.IP)
	return ircctcp.Quote(ircctcp.DCC, "CHAT", "chat", address, strconv.Itoa(o.Port)), nil
}

// Message returns the offer as a PRIVMSG from the sender to target.
func (o ChatOffer) Message(target ircname.Nickname) (ircmsg.IrcMessage, error) {
	body, err := o.Body()
	if err != nil {
		return ircmsg.IrcMessage{}, err
	}
	return offerMessage(o.Sender, target, body), nil
}

// SendOffer is a DCC SEND request.
type SendOffer struct {
	Sender   ircname.Nickname
	Filename string
	IP       net.IP
	Port     int
	Size     int64
}

// Validate returns an error if the offer cannot be sent.
func (o SendOffer) Validate() error {
	if o.Sender.IsZero() {
		return errNoSender
	}
	if err := checkFilename(o.Filename); err != nil {
		return err
	}
	if _, err := encodeAddress(o.IP); err != nil {
		return err
	}
	if err := checkPort(o.Port); err != nil {
		return err
	}
	if o.Size < 0 {
		return errBadSize
	}
	return nil
}

// Body returns the CTCP body of the offer.
func (o SendOffer) Body() (string, error) {
	err := o.Validate()
	if err != nil {
		return "", err
	}

	address, _ := encodeAddress(o.IP)
	return ircctcp.Quote(
		ircctcp.DCC, "SEND",
		quoteFilename(o.Filename),
		address,
		strconv.Itoa(o.Port),
		strconv.FormatInt(o.Size, 10),
	), nil
}

// Message returns the offer as a PRIVMSG from the sender to target.
func (o SendOffer) Message(target ircname.Nickname) (ircmsg.IrcMessage, error) {
	body, err := o.Body()
	if err != nil {
		return ircmsg.IrcMessage{}, err
	}
	return offerMessage(o.Sender, target, body), nil
}

// HumanSize returns the file size for display, e.g. "1.5M".
func (o SendOffer) HumanSize() string {
	if o.Size < 0 {
		return "0B"
	}
	return bytefmt.ByteSize(uint64(o.Size))
}

// ResumeOffer is a DCC RESUME request, or the ACCEPT reply to one.
type ResumeOffer struct {
	Sender   ircname.Nickname
	Filename string
	Port     int
	Position int64
	Accept   bool
}

// Validate returns an error if the offer cannot be sent.
func (o ResumeOffer) Validate() error {
	if o.Sender.IsZero() {
		return errNoSender
	}
	if err := checkFilename(o.Filename); err != nil {
		return err
	}
	if err := checkPort(o.Port); err != nil {
		return err
	}
	if o.Position < 0 {
		return errBadSize
	}
	return nil
}

// Body returns the CTCP body of the offer.
func (o ResumeOffer) Body() (string, error) {
	err := o.Validate()
	if err != nil {
		return "", err
	}

	subcommand := "RESUME"
	if o.Accept {
		subcommand = "ACCEPT"
	}
	return ircctcp.Quote(
		ircctcp.DCC, subcommand,
		quoteFilename(o.Filename),
		strconv.Itoa(o.Port),
		strconv.FormatInt(o.Position, 10),
	), nil
}

// Message returns the offer as a PRIVMSG from the sender to target.
func (o ResumeOffer) Message(target ircname.Nickname) (ircmsg.IrcMessage, error) {
	body, err := o.Body()
	if err != nil {
		return ircmsg.IrcMessage{}, err
	}
	return offerMessage(o.Sender, target, body), nil
}

func offerMessage(sender, target ircname.Nickname, body string) ircmsg.IrcMessage {
	return ircmsg.MakeMessage(nil, sender.String(), "PRIVMSG", target.String(), body)
}

// encodeAddress returns IPv4 addresses as a decimal integer, which is what
// DCC clients expect, and IPv6 addresses as text.
func encodeAddress(ip net.IP) (string, error) {
	if v4 := ip.To4(); v4 != nil {
		return strconv.FormatUint(uint64(binary.BigEndian.Uint32(v4)), 10), nil
	}
	if len(ip) == net.IPv6len {
		return ip.String(), nil
	}
	return "", errBadAddress
}

func checkPort(port int) error {
	if port < 1 || port > 65535 {
		return errBadPort
	}
	return nil
}

func checkFilename(filename string) error {
	if strings.TrimSpace(filename) == "" || strings.ContainsAny(filename, "\"\x00\x01\r\n") {
		return errBadFilename
	}
	return nil
}

// quoteFilename wraps filenames containing spaces in double quotes.
func quoteFilename(filename string) string {
	if strings.Contains(filename, " ") {
		return `"` + filename + `"`
	}
	return filename
}
