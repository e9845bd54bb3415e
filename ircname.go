// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/docopt/docopt-go"
	"github.com/goshuirc/ircname/lib"
	"github.com/goshuirc/ircname/lib/console"
	"github.com/goshuirc/ircname/lib/datastores/buntdb"
)

func main() {
	usage := `ircname.

ircname checks, compares and reserves IRC nicknames.

Usage:
	ircname check [--conf <filename>] <name>...
	ircname compare [--conf <filename>] <name>...
	ircname reserve [--conf <filename>] <name> <owner>
	ircname release [--conf <filename>] <name>
	ircname lookup [--conf <filename>] <name>
	ircname list [--conf <filename>]
	ircname -h | --help
	ircname --version

Options:
	--conf <filename>  Configuration file to use.
	-h --help          Show this screen.
	--version          Show version.`

	arguments, _ := docopt.Parse(usage, nil, true, ircname.SemVer, false)

	config := ircname.DefaultConfig()
	if configfile, given := arguments["--conf"].(string); given {
		var err error
		config, err = ircname.LoadConfig(configfile)
		if err != nil {
			log.Fatal("Config file did not load successfully: ", err.Error())
		}
	}

	names, _ := arguments["<name>"].([]string)

	var ok bool
	switch {
	case arguments["check"].(bool):
		ok = check(config, names)
	case arguments["compare"].(bool):
		ok = compare(config, names)
	default:
		ok = registry(config, arguments, names)
	}

	if !ok {
		os.Exit(1)
	}
}

// check reports whether each name is a valid nickname.
func check(config *ircname.Config, names []string) bool {
	parser := config.Parser()
	allGood := true

	for _, name := range names {
		nick, err := parser.Nickname(name)
		if err != nil {
			allGood = false
			ircconsole.Error(fmt.Sprintf("%q: %s", name, describe(err)))
			continue
		}

		ircconsole.Good(fmt.Sprintf("%s is valid, compared as %s", nick, nick.Fold()))
		if config.IsReserved(nick) {
			ircconsole.Warn(fmt.Sprintf("%s is reserved by the network", nick))
		}
	}

	return allGood
}

// compare prints the given nicknames in order, marking names that are equal.
func compare(config *ircname.Config, names []string) bool {
	parser := config.Parser()
	allGood := true

	var nicks []ircname.Nickname
	for _, name := range names {
		nick, err := parser.Nickname(name)
		if err != nil {
			allGood = false
			ircconsole.Error(fmt.Sprintf("%q: %s", name, describe(err)))
			continue
		}
		nicks = append(nicks, nick)
	}

	sort.SliceStable(nicks, func(i, j int) bool {
		return nicks[i].Compare(nicks[j]) < 0
	})

	table := ircconsole.NewTable("Name", "Compared as", "Hash", "Same as previous")
	for i, nick := range nicks {
		same := ""
		if i > 0 && nick.Equal(nicks[i-1]) {
			same = "Yes"
		}
		table.Append([]string{nick.String(), nick.Fold(), fmt.Sprintf("%016x", nick.Hash()), same})
	}
	if len(nicks) > 0 {
		table.RenderToOutput()
	}

	return allGood
}

// registry runs the reserve/release/lookup/list commands.
func registry(config *ircname.Config, arguments map[string]interface{}, names []string) bool {
	bus := ircname.MakeHookEmitter()
	bus.Register(ircname.HookNameReservedName, func(hook interface{}) {
		event := hook.(*ircname.HookNameReserved)
		log.Println("Reserved", event.Reservation.Name.String(), "for", event.Reservation.Owner)
	})
	bus.Register(ircname.HookNameReleasedName, func(hook interface{}) {
		event := hook.(*ircname.HookNameReleased)
		log.Println("Released", event.Name.String())
	})

	data, err := nameDataStoreBuntdb.Open(config.Registry.Path, config.Parser(), bus)
	if err != nil {
		log.Fatalln(err.Error())
	}
	defer data.Close()

	err = data.Setup()
	if err != nil {
		ircconsole.Error(fmt.Sprintf("Could not initialise the database: %s", err.Error()))
		return false
	}

	if arguments["list"].(bool) {
		reservations, err := data.All()
		if err != nil {
			ircconsole.Error(err.Error())
			return false
		}

		table := ircconsole.NewTable("Name", "Owner", "Reserved")
		for _, reservation := range reservations {
			table.Append([]string{reservation.Name.String(), reservation.Owner, reservation.Reserved.Format("2006-01-02 15:04:05")})
		}
		table.RenderToOutput()
		return true
	}

	if len(names) < 1 {
		ircconsole.Error("No name given")
		return false
	}
	nick, err := config.Parser().Nickname(names[0])
	if err != nil {
		ircconsole.Error(fmt.Sprintf("%q: %s", names[0], describe(err)))
		return false
	}

	switch {
	case arguments["reserve"].(bool):
		if config.IsReserved(nick) {
			ircconsole.Error(fmt.Sprintf("%s is reserved by the network", nick))
			return false
		}
		owner, _ := arguments["<owner>"].(string)
		_, err = data.Reserve(nick, owner)
		if err == nil {
			ircconsole.Good(fmt.Sprintf("%s reserved for %s", nick, owner))
		}
	case arguments["release"].(bool):
		err = data.Release(nick)
		if err == nil {
			ircconsole.Good(fmt.Sprintf("%s released", nick))
		}
	case arguments["lookup"].(bool):
		var reservation *ircname.Reservation
		reservation, err = data.Lookup(nick)
		if err == nil {
			ircconsole.Note(fmt.Sprintf("%s is reserved for %s since %s", reservation.Name, reservation.Owner, reservation.Reserved.Format("2006-01-02 15:04:05")))
		}
	}

	if err != nil {
		ircconsole.Error(fmt.Sprintf("%s: %s", nick, err.Error()))
		return false
	}
	return true
}

// describe adds the grammar's reason to a parse error.
func describe(err error) string {
	if grammarErr, isGrammarErr := err.(*ircname.GrammarError); isGrammarErr {
		return fmt.Sprintf("%s (%s)", grammarErr.Error(), grammarErr.Reason.Error())
	}
	return err.Error()
}
