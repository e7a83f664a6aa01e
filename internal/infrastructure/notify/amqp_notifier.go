package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/wms-inventory/internal/application/stock"
)

var _ stock.Notifier = (*AMQPNotifier)(nil)

// AMQPNotifier publica las alertas de stock bajo en un exchange topic de
// RabbitMQ en lugar de llamar al servicio HTTP. Mismo payload y mismo
// contrato de mejor esfuerzo que HTTPNotifier.
type AMQPNotifier struct {
	ch         *amqp.Channel
	exchange   string
	routingKey string
}

// DialAMQP abre conexión y canal y declara el exchange durable. Reintenta la
// conexión unas pocas veces para tolerar el arranque del broker en contenedores.
func DialAMQP(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	var conn *amqp.Connection
	var err error

	for i := 0; i < 5; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		log.Warn().Err(err).Int("intento", i+1).Msg("conexión a RabbitMQ fallida, reintentando")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("conectar a RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, fmt.Errorf("abrir canal: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, nil, fmt.Errorf("declarar exchange: %w", err)
	}

	return conn, ch, nil
}

// NewAMQPNotifier construye el publicador sobre un canal ya abierto.
func NewAMQPNotifier(ch *amqp.Channel, exchange, routingKey string) *AMQPNotifier {
	return &AMQPNotifier{ch: ch, exchange: exchange, routingKey: routingKey}
}

// NotifyLowStock publica la alerta. El fallo se registra y se devuelve como
// error benigno; el ajuste ya confirmado no se ve afectado.
func (n *AMQPNotifier) NotifyLowStock(ctx context.Context, productID, locationID, quantity int64) error {
	payload := buildAlertPayload(productID, locationID, quantity)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal alerta: %w", err)
	}

	err = n.ch.PublishWithContext(ctx,
		n.exchange,   // exchange
		n.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Error().
			Str("evento", "alert-failed").
			Err(err).
			Int64("product_id", productID).
			Int64("location_id", locationID).
			Msg("fallo al publicar la alerta de stock bajo")
		return fmt.Errorf("publicar alerta: %w", err)
	}
	return nil
}
