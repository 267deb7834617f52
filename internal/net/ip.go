package net

import (
	"log"
	"net"
)

// OutgoingIP finds the address other machines on the LAN can reach us on.
// No packet is sent; dialing UDP only picks a route.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err == nil {
		defer conn.Close()
		if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
			return addr.IP.String()
		}
	}
	if ip := firstIPv4(); ip != nil {
		return ip.String()
	}
	log.Println("[SHARE] No LAN address found, share link will use loopback")
	return "127.0.0.1"
}

// firstIPv4 returns the first IPv4 address of an up, non-loopback interface.
func firstIPv4() net.IP {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	return nil
}
