package mocks

import mock "github.com/stretchr/testify/mock"

// NewQuietLogger returns a Logger mock that accepts any call.
func NewQuietLogger() *Logger {
	m := &Logger{}
	for _, method := range []string{"Debugf", "Infof", "Warnf"} {
		for n := 0; n <= 6; n++ {
			args := make([]interface{}, n+2)
			for i := range args {
				args[i] = mock.Anything
			}
			m.On(method, args...).Maybe().Return()
		}
	}
	for n := 0; n <= 6; n++ {
		args := make([]interface{}, n+3)
		for i := range args {
			args[i] = mock.Anything
		}
		m.On("Errorf", args...).Maybe().Return()
	}
	m.On("WithFields", mock.Anything).Maybe().Return(m)
	return m
}
