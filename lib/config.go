// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package ircname

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// DefaultRegistryPath is where the registry lives when config doesn't say.
const DefaultRegistryPath = "names.db"

// Config defines a configuration file for ircname
type Config struct {
	Names struct {
		Nickname *Grammar
		Channel  *Grammar
		Reserved []string
	}
	Registry struct {
		Path string
	}

	parser   *Parser
	reserved *Dict[NicknameKind, struct{}]
}

// DefaultConfig returns the config used when no file is given.
func DefaultConfig() *Config {
	config := &Config{}
	err := config.prepare()
	if err != nil {
		// the defaults are always sane
		panic(err)
	}
	return config
}

// LoadConfig returns a Config instance
func LoadConfig(filename string) (config *Config, err error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig returns a Config from YAML data.
func ParseConfig(data []byte) (config *Config, err error) {
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}

	err = config.prepare()
	if err != nil {
		return nil, err
	}
	return config, nil
}

// prepare fills in defaults and builds the parser and reserved names.
func (conf *Config) prepare() error {
	if conf.Names.Nickname == nil {
		conf.Names.Nickname = NicknameGrammar()
	}
	if conf.Names.Nickname.Name == "" {
		conf.Names.Nickname.Name = nicknameGrammar.Name
	}
	if conf.Names.Channel == nil {
		conf.Names.Channel = ChannelGrammar()
	}
	if conf.Names.Channel.Name == "" {
		conf.Names.Channel.Name = channelGrammar.Name
	}

	for _, grammar := range []*Grammar{conf.Names.Nickname, conf.Names.Channel} {
		err := grammar.sanity()
		if err != nil {
			return fmt.Errorf("Could not load %s grammar: %w", grammar.Name, err)
		}
	}

	if conf.Registry.Path == "" {
		conf.Registry.Path = DefaultRegistryPath
	}

	conf.parser = NewParser(conf.Names.Nickname, conf.Names.Channel)

	reserved := make(map[Nickname]struct{})
	for _, text := range conf.Names.Reserved {
		nick, err := ConvertWith[NicknameKind](conf.Names.Nickname, text)
		if err != nil {
			return fmt.Errorf("Could not load reserved names: %w", err)
		}
		reserved[nick] = struct{}{}
	}
	var err error
	conf.reserved, err = NewDict(reserved)
	if err != nil {
		return fmt.Errorf("Could not load reserved names: %w", err)
	}

	return nil
}

// Parser returns a Parser using the configured grammars.
func (conf *Config) Parser() *Parser {
	return conf.parser
}

// IsReserved returns true if nick is one of the configured reserved names.
func (conf *Config) IsReserved(nick Nickname) bool {
	return conf.reserved.Has(nick)
}

// Parser parses names against a fixed set of grammars.
type Parser struct {
	nickname *Grammar
	channel  *Grammar
}

// NewParser returns a Parser. A nil grammar means the default one.
func NewParser(nickname, channel *Grammar) *Parser {
	if nickname == nil {
		nickname = &nicknameGrammar
	}
	if channel == nil {
		channel = &channelGrammar
	}
	return &Parser{
		nickname: nickname,
		channel:  channel,
	}
}

// Nickname parses text with the parser's nickname grammar.
func (p *Parser) Nickname(text string) (Nickname, error) {
	return ParseWith[NicknameKind](p.nickname, text)
}

// ChannelName parses text with the parser's channel grammar.
func (p *Parser) ChannelName(text string) (ChannelName, error) {
	return ParseWith[ChannelKind](p.channel, text)
}

// IsValidNickname returns true if Nickname would accept text.
func (p *Parser) IsValidNickname(text string) bool {
	return p.nickname.Validate(text)
}

// IsValidChannelName returns true if ChannelName would accept text.
func (p *Parser) IsValidChannelName(text string) bool {
	return p.channel.Validate(text)
}
