package consumer

import (
	"encoding/json"
	"log"

	"github.com/hostwell/room-booking-service/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryConsumer mirrors property and room records published by the
// property service into the local booking database.
type InventoryConsumer struct {
	db *gorm.DB
}

func NewInventoryConsumer(db *gorm.DB) *InventoryConsumer {
	return &InventoryConsumer{db: db}
}

func (ic *InventoryConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			ic.handleMessage(msg)
		}
		log.Println("[InventoryConsumer] channel closed, stopping consumer")
	}()
}

func (ic *InventoryConsumer) handleMessage(msg amqp.Delivery) {
	switch msg.RoutingKey {
	case "property.created", "property.updated":
		ic.upsertProperty(msg)
	case "room.created", "room.updated":
		ic.upsertRoom(msg)
	default:
		log.Printf("[InventoryConsumer] ignoring routing key %s", msg.RoutingKey)
		msg.Ack(false)
	}
}

func (ic *InventoryConsumer) upsertProperty(msg amqp.Delivery) {
	var property models.Property
	if err := json.Unmarshal(msg.Body, &property); err != nil {
		log.Printf("[InventoryConsumer] failed to unmarshal property: %v", err)
		msg.Nack(false, false)
		return
	}

	result := ic.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "city", "updated_at"}),
	}).Create(&property)

	if result.Error != nil {
		log.Printf("[InventoryConsumer] failed to upsert property %d: %v", property.ID, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[InventoryConsumer] synced property %d: %s", property.ID, property.Name)
	msg.Ack(false)
}

func (ic *InventoryConsumer) upsertRoom(msg amqp.Delivery) {
	var room models.Room
	if err := json.Unmarshal(msg.Body, &room); err != nil {
		log.Printf("[InventoryConsumer] failed to unmarshal room: %v", err)
		msg.Nack(false, false)
		return
	}

	result := ic.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"property_id", "room_number", "room_type", "updated_at"}),
	}).Create(&room)

	if result.Error != nil {
		log.Printf("[InventoryConsumer] failed to upsert room %d: %v", room.ID, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[InventoryConsumer] synced room %d (property %d)", room.ID, room.PropertyID)
	msg.Ack(false)
}
