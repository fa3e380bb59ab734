package messaging

import (
	"dr-portal/internal/app/config"
	"dr-portal/internal/pkg/constvars"
	"log"
	"strconv"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const heartbeat = 10 * time.Second

// NewRabbitMQ dials the broker that receives diagnosis events. Credentials
// are escaped through amqp091.URI.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	url, err := connectionURL(driverConfig.RabbitMQ)
	if err != nil {
		log.Fatalf("Invalid RabbitMQ port %q: %s", driverConfig.RabbitMQ.Port, err.Error())
	}

	conn, err := amqp091.DialConfig(url, amqp091.Config{
		Heartbeat:  heartbeat,
		Properties: amqp091.Table{"connection_name": constvars.AppName},
	})
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ at %s:%s: %s", driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port, err.Error())
	}
	log.Printf("Successfully connected to RabbitMQ at %s:%s", driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port)
	return conn
}

func connectionURL(rabbitConfig config.RabbitMQ) (string, error) {
	port, err := strconv.Atoi(rabbitConfig.Port)
	if err != nil {
		return "", err
	}
	uri := amqp091.URI{
		Scheme:   "amqp",
		Host:     rabbitConfig.Host,
		Port:     port,
		Username: rabbitConfig.Username,
		Password: rabbitConfig.Password,
		Vhost:    "/",
	}
	return uri.String(), nil
}
