package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"labourlink/internal/config"
	"labourlink/internal/models"
	"labourlink/internal/utils"
	"labourlink/pkg/logger"
	"labourlink/pkg/sms"
)

// NotificationService delivers booking notifications to labourers. Dispatch
// is fire-and-forget: jobs are queued and retried with backoff by a worker
// goroutine, so a provider outage never fails the booking that triggered it.
type NotificationService interface {
	NotifyBookingCreated(booking *models.Booking, employer, labourer *models.User)
	Close()
}

type smsJob struct {
	to      string
	message string
}

type notificationService struct {
	provider    sms.SMSProvider
	countryCode string
	logger      *logger.Logger

	jobs     chan *smsJob
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewNotificationService(provider sms.SMSProvider, cfg *config.SMSConfig, log *logger.Logger) NotificationService {
	countryCode := utils.DefaultCountryCode
	if cfg != nil && cfg.CountryCode != "" {
		countryCode = cfg.CountryCode
	}

	s := &notificationService{
		provider:    provider,
		countryCode: countryCode,
		logger:      log,
		jobs:        make(chan *smsJob, utils.NotificationQueueSize),
	}

	s.wg.Add(1)
	go s.worker()

	return s
}

func (s *notificationService) NotifyBookingCreated(booking *models.Booking, employer, labourer *models.User) {
	if labourer == nil || labourer.Phone == "" {
		s.logger.WithBookingID(booking.ID).Warn("Labourer has no phone number, skipping booking SMS")
		return
	}

	employerPhone := ""
	if employer != nil {
		employerPhone = employer.Phone
	}

	message := fmt.Sprintf("New Booking:\nClient Address: %s\nClient Number: %s\nDate: %s\nTime: %s - %s",
		booking.Location.Address,
		employerPhone,
		booking.Date.Format("02/01/2006"),
		booking.TimeSlot.StartTime,
		booking.TimeSlot.EndTime,
	)

	job := &smsJob{
		to:      utils.FormatPhone(labourer.Phone, s.countryCode),
		message: message,
	}

	select {
	case s.jobs <- job:
	default:
		s.logger.WithBookingID(booking.ID).Warn("Notification queue full, dropping booking SMS")
	}
}

func (s *notificationService) worker() {
	defer s.wg.Done()

	for job := range s.jobs {
		s.deliver(job)
	}
}

func (s *notificationService) deliver(job *smsJob) {
	if s.provider == nil {
		s.logger.WithField("to", job.to).Debug("SMS disabled, skipping delivery")
		return
	}

	backoff := time.Second
	for attempt := 1; attempt <= utils.NotificationRetryAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), utils.NotificationTimeout)
		_, err := s.provider.SendSMS(ctx, &sms.SMSRequest{
			To:      job.to,
			Message: job.message,
			Type:    "transactional",
		})
		cancel()

		if err == nil {
			s.logger.WithField("to", job.to).Info("Booking SMS delivered")
			return
		}

		s.logger.WithError(err).WithFields(map[string]interface{}{
			"to":      job.to,
			"attempt": attempt,
		}).Warn("Booking SMS delivery failed")

		if attempt < utils.NotificationRetryAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	s.logger.WithField("to", job.to).Error("Booking SMS dropped after retries")
}

// Close drains the queue and stops the worker.
func (s *notificationService) Close() {
	s.stopOnce.Do(func() {
		close(s.jobs)
	})
	s.wg.Wait()
}
