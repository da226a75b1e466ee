// Package mqtt publishes assignment results to field devices over MQTT.
package mqtt

import (
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// Config defines the MQTT connection settings.
type Config struct {
	Enabled     bool   `json:"enabled"`
	Broker      string `json:"broker"`
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	TopicPrefix string `json:"topic_prefix"`
	QoS         byte   `json:"qos"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "fieldassign"
	}
	if c.TopicPrefix == "" {
		c.TopicPrefix = "fieldassign"
	}
}

// Publisher is the minimal publishing surface used by the notifier. It is
// implemented by PahoClient and by mocks in tests.
type Publisher interface {
	Publish(topic string, payload []byte) error
	Close()
}

// PahoClient implements Publisher using Eclipse Paho.
type PahoClient struct {
	client paho.Client
	qos    byte
}

// NewPahoClient connects to the broker and returns a ready client.
func NewPahoClient(cfg Config) (*PahoClient, error) {
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := paho.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoClient{client: client, qos: cfg.QoS}, nil
}

// Publish sends the payload and waits for broker confirmation.
func (c *PahoClient) Publish(topic string, payload []byte) error {
	token := c.client.Publish(topic, c.qos, false, payload)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker.
func (c *PahoClient) Close() {
	if c.client.IsConnected() {
		c.client.Disconnect(250)
	}
}
