package config

import (
	"errors"
	"time"
)

const defaultQueueProcessingTimeout = 5 * time.Second

type QueueConfig struct {
	QueueUser              string        `mapstructure:"queue_user"`
	QueuePassword          string        `mapstructure:"queue_password"`
	Url                    string        `mapstructure:"url"`
	QueueProcessingTimeout time.Duration `mapstructure:"processing_timeout"`
	// Exchange is the topic exchange challenge notifications are published to.
	Exchange string `mapstructure:"exchange"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.QueueUser == "" {
		return errors.New("queue user is required")
	}

	if cfg.QueuePassword == "" {
		return errors.New("queue password is required")
	}

	if cfg.Url == "" {
		return errors.New("queue url is required")
	}

	if cfg.Exchange == "" {
		return errors.New("queue exchange is required")
	}

	if cfg.QueueProcessingTimeout <= 0 {
		cfg.QueueProcessingTimeout = defaultQueueProcessingTimeout
	}

	return nil
}
