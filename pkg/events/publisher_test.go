package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"facilityhub.dev/facility-service/pkg/common"
	_ "facilityhub.dev/facility-service/pkg/testing"
)

func TestNilPublisherDropsEverything(t *testing.T) {
	common.SetTestLoggerNop()

	var p *Publisher

	// must not panic; domain writes never depend on event delivery
	p.Publish(TypeComplaintCreated, map[string]string{"id": "c-1"})
	assert.Nil(t, p.Subscribe())
}

func TestPublisherWithoutClientDropsEverything(t *testing.T) {
	common.SetTestLoggerNop()

	p := NewPublisher(nil, "")

	p.Publish(TypeSensorAlert, nil)
	assert.Nil(t, p.Subscribe())
}

func TestNewPublisherDefaultChannel(t *testing.T) {
	p := NewPublisher(nil, "")
	assert.Equal(t, DefaultChannel, p.channel)

	p = NewPublisher(nil, "custom:events")
	assert.Equal(t, "custom:events", p.channel)
}
