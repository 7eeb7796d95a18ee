package commands

import (
	"io"
	"os/user"

	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/sirupsen/logrus"
)

// This file exports dummy constructors for use by tests in other packages

// NewDummyOSCommand creates a new dummy OSCommand for testing
func NewDummyOSCommand() *OSCommand {
	return NewOSCommand(NewDummyLog(), NewDummyAppConfig())
}

// NewDummyAppConfig creates a new dummy AppConfig for testing
func NewDummyAppConfig() *config.AppConfig {
	userConfig := config.GetDefaultConfig()
	userConfig.Language = "en"
	appConfig := &config.AppConfig{
		Name:        "lazyls",
		Version:     "unversioned",
		Commit:      "",
		BuildDate:   "",
		Debug:       false,
		BuildSource: "",
		UserConfig:  &userConfig,
	}
	return appConfig
}

// NewDummyLog creates a new dummy Log for testing
func NewDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

// NewDummyNameResolver creates a NameResolver that knows only the given users
// and groups, keyed by decimal ID
func NewDummyNameResolver(users map[string]string, groups map[string]string) *NameResolver {
	resolver := NewNameResolver(NewDummyLog())
	resolver.lookupUser = func(id string) (*user.User, error) {
		if name, ok := users[id]; ok {
			return &user.User{Uid: id, Username: name}, nil
		}
		return nil, user.UnknownUserIdError(0)
	}
	resolver.lookupGroup = func(id string) (*user.Group, error) {
		if name, ok := groups[id]; ok {
			return &user.Group{Gid: id, Name: name}, nil
		}
		return nil, user.UnknownGroupIdError(id)
	}
	return resolver
}
