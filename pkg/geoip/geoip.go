// Package geoip wraps local MaxMind database lookups used to enrich
// verdicts for URLs that address their host by raw IP. Lookups touch only
// the local .mmdb files; the scorer itself never goes on the network.
package geoip

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// HostInfo holds the geographic and network data found for an IP host.
type HostInfo struct {
	CountryCode string
	ASN         uint
	OrgName     string
}

// Service manages the GeoLite2 City and ASN database readers.
type Service struct {
	cityReader *geoip2.Reader
	asnReader  *geoip2.Reader
}

// NewService opens the databases at the given paths.
func NewService(cityDBPath, asnDBPath string) (*Service, error) {
	cityReader, err := geoip2.Open(cityDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening city database: %w", err)
	}

	asnReader, err := geoip2.Open(asnDBPath)
	if err != nil {
		cityReader.Close()
		return nil, fmt.Errorf("opening asn database: %w", err)
	}

	return &Service{
		cityReader: cityReader,
		asnReader:  asnReader,
	}, nil
}

// Close releases the database readers.
func (s *Service) Close() {
	if s.cityReader != nil {
		s.cityReader.Close()
	}
	if s.asnReader != nil {
		s.asnReader.Close()
	}
}

// LookupHost resolves country and AS ownership for an IP address string.
// Partial failures leave the corresponding fields zero rather than
// discarding what was found.
func (s *Service) LookupHost(ipAddress string) (*HostInfo, error) {
	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return nil, fmt.Errorf("invalid ip address: %s", ipAddress)
	}

	info := &HostInfo{}

	if city, err := s.cityReader.City(ip); err == nil {
		info.CountryCode = city.Country.IsoCode
	}
	if asn, err := s.asnReader.ASN(ip); err == nil {
		info.ASN = uint(asn.AutonomousSystemNumber)
		info.OrgName = asn.AutonomousSystemOrganization
	}

	return info, nil
}
