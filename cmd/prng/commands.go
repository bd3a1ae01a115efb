// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/prng/utils/sampler"
)

const (
	floorKey    = "floor"
	ceilKey     = "ceil"
	realKey     = "real"
	sizeKey     = "size"
	chanceKey   = "chance"
	positionKey = "position"
	uniqueKey   = "unique"
	linearKey   = "linear"
)

func (a *app) numberCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number",
		Short: "Sample a number in [floor, ceil]",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().String(floorKey, "0", "Smallest value that can be sampled")
	cmd.Flags().String(ceilKey, "100", "Largest value that can be sampled")
	cmd.Flags().Bool(realKey, false, "If true, sample a real number instead of an integer")

	cmd.RunE = a.runE(func(cmd *cobra.Command, _ []string) error {
		floorStr, _ := cmd.Flags().GetString(floorKey)
		ceilStr, _ := cmd.Flags().GetString(ceilKey)
		isReal, _ := cmd.Flags().GetBool(realKey)

		if isReal {
			floor, ceil, err := parseBounds(floorStr, ceilStr, func(s string) (float64, error) {
				return strconv.ParseFloat(s, 64)
			})
			if err != nil {
				return err
			}
			n, err := sampler.Real(a.generator, floor, ceil)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(n, 'g', -1, 64))
			return err
		}

		floor, ceil, err := parseBounds(floorStr, ceilStr, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
		if err != nil {
			return err
		}
		n, err := sampler.Integer(a.generator, floor, ceil)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
		return err
	})
	return cmd
}

func (a *app) indexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Sample an index in [0, size-1]",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().Int(sizeKey, 1, "Number of positions to choose from")

	cmd.RunE = a.runE(func(cmd *cobra.Command, _ []string) error {
		size, _ := cmd.Flags().GetInt(sizeKey)
		index, err := a.generator.Index(size)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), index)
		return err
	})
	return cmd
}

func (a *app) boolCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bool",
		Short: "Sample a boolean",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().Float64(chanceKey, 0.5, "Probability of sampling true. Must be in [0, 1]")

	cmd.RunE = a.runE(func(cmd *cobra.Command, _ []string) error {
		if !cmd.Flags().Changed(chanceKey) {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.generator.Bool())
			return err
		}

		chance, _ := cmd.Flags().GetFloat64(chanceKey)
		b, err := a.generator.Chance(chance)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), b)
		return err
	})
	return cmd
}

func (a *app) pickCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick VALUE...",
		Short: "Sample one of the provided values",
		Args:  cobra.ArbitraryArgs,
	}
	cmd.Flags().Bool(positionKey, false, "If true, print the position of the sampled value instead of the value")

	cmd.RunE = a.runE(func(cmd *cobra.Command, args []string) error {
		printPosition, _ := cmd.Flags().GetBool(positionKey)
		if printPosition {
			position, err := sampler.PositionOf(a.generator, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), position.Index())
			return err
		}

		value, err := sampler.Value(a.generator, args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
		return err
	})
	return cmd
}

func (a *app) subsetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subset VALUE...",
		Short: "Sample distinct values from the provided values",
		Args:  cobra.ArbitraryArgs,
	}
	cmd.Flags().IntP(sizeKey, "k", 1, "Number of values to sample")

	cmd.RunE = a.runE(func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetInt(sizeKey)
		subset, err := sampler.Subset(a.generator, args, size)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(subset, " "))
		return err
	})
	return cmd
}

func (a *app) weightedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weighted WEIGHT...",
		Short: "Sample an index with probability proportional to its weight",
		Args:  cobra.ArbitraryArgs,
	}
	cmd.Flags().Int(uniqueKey, 0, "If positive, sample this many units of weight without replacement and print their indices")
	cmd.Flags().Bool(linearKey, false, "If true, search the weights linearly instead of with a heap. Faster when a few weights dominate")

	cmd.RunE = a.runE(func(cmd *cobra.Command, args []string) error {
		weights := make([]uint64, len(args))
		for i, arg := range args {
			weight, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: weight %q", sampler.ErrInvalidArgument, arg)
			}
			weights[i] = weight
		}

		w := sampler.NewWeighted()
		if linear, _ := cmd.Flags().GetBool(linearKey); linear {
			w = sampler.NewLinearWeighted()
		}

		unique, _ := cmd.Flags().GetInt(uniqueKey)
		if unique <= 0 {
			index, err := sampler.WeightedIndexFrom(a.generator, w, weights)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), index)
			return err
		}

		s := sampler.NewWeightedWithoutReplacement(a.generator, w)
		if err := s.Initialize(weights); err != nil {
			return err
		}
		indices, err := s.Sample(unique)
		if err != nil {
			return err
		}
		strs := make([]string, len(indices))
		for i, index := range indices {
			strs[i] = strconv.Itoa(index)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(strs, " "))
		return err
	})
	return cmd
}

func parseBounds[T any](floorStr, ceilStr string, parse func(string) (T, error)) (T, T, error) {
	floor, err := parse(floorStr)
	if err != nil {
		return floor, floor, fmt.Errorf("%w: floor %q", sampler.ErrInvalidArgument, floorStr)
	}
	ceil, err := parse(ceilStr)
	if err != nil {
		return floor, ceil, fmt.Errorf("%w: ceil %q", sampler.ErrInvalidArgument, ceilStr)
	}
	return floor, ceil, nil
}
