// internal/poller/builder.go
package poller

import (
	"fmt"

	cfg "github.com/NathanMoore4472/modscan-tool/internal/config"
	pmodbus "github.com/NathanMoore4472/modscan-tool/internal/poller/modbus"
)

// Build constructs a Poller from a validated, normalized profile and
// wires the Modbus client lifecycle. Fails fast if the device is not
// reachable at startup.
func Build(p *cfg.Profile) (*Poller, func() error, error) {
	endpoint := fmt.Sprintf("%s:%d", p.Connection.Host, p.Connection.Port)

	client, err := pmodbus.New(pmodbus.Config{
		Endpoint: endpoint,
		UnitID:   uint8(p.Connection.UnitID),
		Timeout:  p.Timeout(),
	})
	if err != nil {
		return nil, nil, err
	}

	poller, err := New(Config{
		FC:         p.FC(),
		Start:      p.ProtocolStart(),
		Count:      uint16(p.Read.Count),
		Interval:   p.Interval(),
		Individual: p.Poll.Individual,
	}, client)
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	return poller, client.Close, nil
}
