package net

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_sketchpad._tcp"

// Advertise announces a sharing host on the LAN. Close the returned value to
// stop advertising.
func Advertise(port int) (io.Closer, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, []string{"Sketchpad"})
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	log.Printf("[SHARE] Advertising %s as %s on port %d", serviceType, host, port)
	return shutdownCloser{server}, nil
}

type shutdownCloser struct{ s *mdns.Server }

func (c shutdownCloser) Close() error { return c.s.Shutdown() }

// Browse looks for sketchpads for timeout and calls found with the share link
// of each one. It returns once the lookup window has passed.
func Browse(timeout time.Duration, found func(link string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(ShareLink(e.AddrV4.String(), e.Port))
		}
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return fmt.Errorf("mDNS lookup failed: %w", err)
	}
	return nil
}
