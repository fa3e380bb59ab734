package messaging

import (
	"dr-portal/internal/app/config"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionURL(t *testing.T) {
	t.Run("credentials are escaped", func(t *testing.T) {
		url, err := connectionURL(config.RabbitMQ{
			Host:     "rabbit",
			Port:     "5673",
			Username: "portal",
			Password: "p@ss:w/rd",
		})
		require.NoError(t, err)

		parsed, err := amqp091.ParseURI(url)
		require.NoError(t, err)
		assert.Equal(t, "rabbit", parsed.Host)
		assert.Equal(t, 5673, parsed.Port)
		assert.Equal(t, "portal", parsed.Username)
		assert.Equal(t, "p@ss:w/rd", parsed.Password)
		assert.Equal(t, "/", parsed.Vhost)
	})

	t.Run("invalid port", func(t *testing.T) {
		_, err := connectionURL(config.RabbitMQ{Host: "rabbit", Port: "amqp"})
		assert.Error(t, err)
	})
}
